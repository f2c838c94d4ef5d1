package seed

// Pair is one built-in chinese/english sentence.
type Pair struct {
	Chinese string
	English string
}

// Built-in practice sets, one per difficulty tier. Shared immutable
// data consumed by both Seed and RetagAndAugment.
var cet6Sentences = []Pair{
	{Chinese: "随着科技的快速发展，人工智能正在改变我们的生活方式。", English: "With the rapid development of technology, artificial intelligence is changing our way of life."},
	{Chinese: "环境保护已成为全球关注的焦点问题。", English: "Environmental protection has become a global focus of concern."},
	{Chinese: "教育是促进社会进步和个人发展的重要途径。", English: "Education is an important way to promote social progress and personal development."},
	{Chinese: "文化交流有助于增进不同国家之间的理解和友谊。", English: "Cultural exchange helps to enhance understanding and friendship between different countries."},
	{Chinese: "经济发展必须与环境保护相协调。", English: "Economic development must be coordinated with environmental protection."},
	{Chinese: "互联网的普及极大地改变了人们获取信息的方式。", English: "The popularity of the Internet has greatly changed the way people access information."},
	{Chinese: "科学研究需要严谨的态度和创新的思维。", English: "Scientific research requires a rigorous attitude and innovative thinking."},
	{Chinese: "健康的生活方式包括均衡饮食和适量运动。", English: "A healthy lifestyle includes a balanced diet and moderate exercise."},
	{Chinese: "全球化趋势使得国际合作变得更加重要。", English: "The trend of globalization makes international cooperation more important."},
	{Chinese: "阅读是获取知识和提高素养的有效方法。", English: "Reading is an effective way to acquire knowledge and improve literacy."},
	{Chinese: "创新是推动社会发展的关键动力。", English: "Innovation is a key driving force for social development."},
	{Chinese: "良好的沟通技巧对于建立人际关系至关重要。", English: "Good communication skills are essential for building interpersonal relationships."},
	{Chinese: "时间管理是提高工作效率的重要技能。", English: "Time management is an important skill for improving work efficiency."},
	{Chinese: "可持续发展要求我们在满足当前需求的同时考虑未来。", English: "Sustainable development requires us to consider the future while meeting current needs."},
	{Chinese: "团队合作能够发挥集体的智慧和力量。", English: "Teamwork can bring out the collective wisdom and strength."},
	{Chinese: "学习外语有助于拓宽视野和增强竞争力。", English: "Learning foreign languages helps to broaden horizons and enhance competitiveness."},
	{Chinese: "心理健康与身体健康同样重要。", English: "Mental health is as important as physical health."},
	{Chinese: "科技进步为人类生活带来了便利，但也带来了挑战。", English: "Technological progress has brought convenience to human life, but also challenges."},
	{Chinese: "批判性思维是现代社会公民应具备的重要能力。", English: "Critical thinking is an important ability that citizens in modern society should possess."},
	{Chinese: "文化多样性丰富了人类文明的内涵。", English: "Cultural diversity enriches the connotation of human civilization."},
	{Chinese: "终身学习已成为适应快速变化社会的必要选择。", English: "Lifelong learning has become a necessary choice to adapt to a rapidly changing society."},
	{Chinese: "社会责任意识是每个公民应具备的基本素质。", English: "A sense of social responsibility is a basic quality that every citizen should possess."},
	{Chinese: "创业精神鼓励人们勇于创新和承担风险。", English: "Entrepreneurship encourages people to innovate and take risks."},
	{Chinese: "数字化时代要求我们掌握新的技能和知识。", English: "The digital age requires us to master new skills and knowledge."},
	{Chinese: "环境保护需要每个人的参与和努力。", English: "Environmental protection requires the participation and efforts of everyone."},
	{Chinese: "教育公平是社会公平的重要体现。", English: "Educational equity is an important manifestation of social equity."},
	{Chinese: "科技创新是推动经济增长的重要引擎。", English: "Scientific and technological innovation is an important engine for economic growth."},
	{Chinese: "跨文化交流有助于消除误解和偏见。", English: "Cross-cultural communication helps to eliminate misunderstandings and prejudices."},
	{Chinese: "个人成长需要不断挑战自我和突破局限。", English: "Personal growth requires constantly challenging oneself and breaking through limitations."},
	{Chinese: "社会责任感促使我们关注弱势群体的需求。", English: "A sense of social responsibility prompts us to pay attention to the needs of vulnerable groups."},
	{Chinese: "信息时代要求我们具备筛选和判断信息的能力。", English: "The information age requires us to have the ability to filter and judge information."},
	{Chinese: "合作共赢是国际关系发展的正确方向。", English: "Win-win cooperation is the right direction for the development of international relations."},
	{Chinese: "文化传承需要与时俱进，不断创新。", English: "Cultural inheritance needs to keep pace with the times and constantly innovate."},
	{Chinese: "健康的生活方式可以预防许多疾病。", English: "A healthy lifestyle can prevent many diseases."},
	{Chinese: "知识经济时代，人才是最宝贵的资源。", English: "In the era of knowledge economy, talent is the most valuable resource."},
	{Chinese: "环境保护与经济发展并不矛盾，可以协调发展。", English: "Environmental protection and economic development are not contradictory and can develop in a coordinated manner."},
	{Chinese: "学习能力比知识本身更为重要。", English: "Learning ability is more important than knowledge itself."},
	{Chinese: "创新思维需要打破传统观念的束缚。", English: "Innovative thinking requires breaking free from the constraints of traditional concepts."},
	{Chinese: "全球化背景下，跨文化理解能力日益重要。", English: "In the context of globalization, cross-cultural understanding is increasingly important."},
	{Chinese: "可持续发展理念已深入人心。", English: "The concept of sustainable development has been deeply rooted in people's hearts."},
	{Chinese: "教育的目标不仅是传授知识，更要培养能力。", English: "The goal of education is not only to impart knowledge, but also to cultivate abilities."},
	{Chinese: "科技进步改变了人们的工作方式和生活方式。", English: "Scientific and technological progress has changed people's working and living styles."},
	{Chinese: "文化自信是一个国家、一个民族发展的重要支撑。", English: "Cultural confidence is an important support for the development of a country and a nation."},
	{Chinese: "终身学习理念适应了知识快速更新的时代特征。", English: "The concept of lifelong learning adapts to the characteristics of the era of rapid knowledge updates."},
	{Chinese: "环境保护需要全球各国共同努力。", English: "Environmental protection requires joint efforts from all countries around the world."},
	{Chinese: "创新是引领发展的第一动力。", English: "Innovation is the primary driving force for development."},
	{Chinese: "教育公平是社会公平的基础。", English: "Educational equity is the foundation of social equity."},
	{Chinese: "文化多样性是人类文明进步的重要动力。", English: "Cultural diversity is an important driving force for the progress of human civilization."},
	{Chinese: "健康的生活方式包括合理饮食、适量运动和充足睡眠。", English: "A healthy lifestyle includes a reasonable diet, moderate exercise and adequate sleep."},
	{Chinese: "全球化促进了各国之间的经济和文化交流。", English: "Globalization has promoted economic and cultural exchanges between countries."},
}

var cet4Sentences = []Pair{
	{Chinese: "我喜欢在周末和朋友一起看电影。", English: "I like to watch movies with friends on weekends."},
	{Chinese: "这个图书馆有很多有用的书籍。", English: "This library has many useful books."},
	{Chinese: "学生们应该认真完成作业。", English: "Students should complete their homework carefully."},
	{Chinese: "天气好的时候，我喜欢去公园散步。", English: "When the weather is nice, I like to take a walk in the park."},
	{Chinese: "学习英语需要每天坚持练习。", English: "Learning English requires daily practice."},
	{Chinese: "我的朋友来自不同的国家。", English: "My friends come from different countries."},
	{Chinese: "这家餐厅的食物非常美味。", English: "The food in this restaurant is very delicious."},
	{Chinese: "我计划下个月去北京旅游。", English: "I plan to travel to Beijing next month."},
	{Chinese: "阅读可以帮助我们扩大知识面。", English: "Reading can help us expand our knowledge."},
	{Chinese: "运动对保持健康很重要。", English: "Exercise is important for staying healthy."},
	{Chinese: "我们应该尊重老师和同学。", English: "We should respect teachers and classmates."},
	{Chinese: "这个城市有很多美丽的景点。", English: "This city has many beautiful attractions."},
	{Chinese: "我喜欢听音乐来放松心情。", English: "I like to listen to music to relax."},
	{Chinese: "大学生活充满了新的挑战和机会。", English: "College life is full of new challenges and opportunities."},
	{Chinese: "我们应该保护环境，减少污染。", English: "We should protect the environment and reduce pollution."},
	{Chinese: "这个项目需要团队合作才能完成。", English: "This project requires teamwork to complete."},
	{Chinese: "我每天花两个小时学习英语。", English: "I spend two hours learning English every day."},
	{Chinese: "互联网让我们的生活更加便利。", English: "The Internet makes our lives more convenient."},
	{Chinese: "我们应该学会管理自己的时间。", English: "We should learn to manage our time."},
	{Chinese: "这个学校有很好的教学设施。", English: "This school has excellent teaching facilities."},
	{Chinese: "我喜欢和同学一起讨论问题。", English: "I like to discuss problems with classmates."},
	{Chinese: "健康饮食对我们的身体很重要。", English: "A healthy diet is important for our body."},
	{Chinese: "我们应该培养良好的学习习惯。", English: "We should develop good study habits."},
	{Chinese: "这个活动吸引了很多人参加。", English: "This activity attracted many people to participate."},
	{Chinese: "我喜欢在早晨做运动。", English: "I like to exercise in the morning."},
	{Chinese: "我们应该珍惜时间，努力学习。", English: "We should cherish time and study hard."},
	{Chinese: "这个博物馆展示了丰富的历史文化。", English: "This museum displays rich historical culture."},
	{Chinese: "我喜欢参加各种课外活动。", English: "I like to participate in various extracurricular activities."},
	{Chinese: "我们应该学会独立思考和解决问题。", English: "We should learn to think independently and solve problems."},
	{Chinese: "这个城市交通便利，生活舒适。", English: "This city has convenient transportation and comfortable living."},
	{Chinese: "我喜欢阅读不同类型的书籍。", English: "I like to read different types of books."},
	{Chinese: "我们应该关心和帮助他人。", English: "We should care about and help others."},
	{Chinese: "这个公园是休闲放松的好地方。", English: "This park is a good place for relaxation."},
	{Chinese: "我喜欢学习新的知识和技能。", English: "I like to learn new knowledge and skills."},
	{Chinese: "我们应该保持积极乐观的态度。", English: "We should maintain a positive and optimistic attitude."},
	{Chinese: "这个图书馆提供安静的学习环境。", English: "This library provides a quiet study environment."},
	{Chinese: "我喜欢和朋友们一起分享快乐。", English: "I like to share happiness with my friends."},
	{Chinese: "我们应该制定合理的学习计划。", English: "We should make a reasonable study plan."},
	{Chinese: "这个活动有助于提高我们的能力。", English: "This activity helps to improve our abilities."},
	{Chinese: "我喜欢在空闲时间听音乐。", English: "I like to listen to music in my spare time."},
	{Chinese: "我们应该学会与他人友好相处。", English: "We should learn to get along well with others."},
	{Chinese: "这个学校为学生提供了很多机会。", English: "This school provides many opportunities for students."},
	{Chinese: "我喜欢参加志愿者活动。", English: "I like to participate in volunteer activities."},
	{Chinese: "我们应该培养自己的兴趣爱好。", English: "We should develop our hobbies and interests."},
	{Chinese: "这个城市有很多优秀的大学。", English: "This city has many excellent universities."},
	{Chinese: "我喜欢在周末和家人一起度过时光。", English: "I like to spend time with my family on weekends."},
	{Chinese: "我们应该学会从错误中学习。", English: "We should learn from our mistakes."},
	{Chinese: "这个活动增进了同学之间的友谊。", English: "This activity enhanced the friendship among classmates."},
	{Chinese: "我喜欢尝试新的事物和挑战。", English: "I like to try new things and challenges."},
	{Chinese: "我们应该为自己的未来做好准备。", English: "We should prepare for our future."},
}

var ieltsSentences = []Pair{
	{Chinese: "全球化对发展中国家的经济产生了深远的影响。", English: "Globalization has had a profound impact on the economies of developing countries."},
	{Chinese: "现代科技的发展引发了关于隐私保护的伦理争议。", English: "The development of modern technology has sparked ethical debates about privacy protection."},
	{Chinese: "气候变化是当今世界面临的最紧迫的环境挑战之一。", English: "Climate change is one of the most urgent environmental challenges facing the world today."},
	{Chinese: "高等教育机构在培养创新人才方面发挥着关键作用。", English: "Higher education institutions play a crucial role in cultivating innovative talents."},
	{Chinese: "多元文化社会需要建立有效的跨文化沟通机制。", English: "Multicultural societies require effective mechanisms for cross-cultural communication."},
	{Chinese: "可持续城市发展需要在经济增长与环境保护之间取得平衡。", English: "Sustainable urban development requires a balance between economic growth and environmental protection."},
	{Chinese: "人工智能技术的应用正在重塑传统行业的运作模式。", English: "The application of artificial intelligence technology is reshaping the operational models of traditional industries."},
	{Chinese: "社会媒体平台改变了人们获取信息和交流的方式。", English: "Social media platforms have transformed the way people access information and communicate."},
	{Chinese: "教育公平是实现社会平等的重要途径。", English: "Educational equity is an important pathway to achieving social equality."},
	{Chinese: "生物多样性保护对于维持生态系统的稳定性至关重要。", English: "Biodiversity conservation is crucial for maintaining ecosystem stability."},
	{Chinese: "远程工作的普及对传统办公模式提出了新的挑战。", English: "The widespread adoption of remote work has presented new challenges to traditional office models."},
	{Chinese: "文化遗产的保护需要政府、社区和国际组织的共同努力。", English: "The protection of cultural heritage requires joint efforts from governments, communities, and international organizations."},
	{Chinese: "人口老龄化趋势要求社会重新审视养老保障体系。", English: "The trend of population aging requires society to reconsider the elderly care system."},
	{Chinese: "可再生能源技术的发展为应对能源危机提供了新的解决方案。", English: "The development of renewable energy technologies provides new solutions to address the energy crisis."},
	{Chinese: "国际移民现象反映了全球化背景下人口流动的复杂性。", English: "International migration reflects the complexity of population mobility in the context of globalization."},
	{Chinese: "数字鸿沟问题阻碍了信息时代的社会包容性发展。", English: "The digital divide hinders inclusive social development in the information age."},
	{Chinese: "公共卫生系统的完善对于应对突发疫情至关重要。", English: "The improvement of public health systems is essential for responding to sudden epidemics."},
	{Chinese: "性别平等议题在当代社会仍然具有重要的现实意义。", English: "Gender equality issues remain highly relevant in contemporary society."},
	{Chinese: "科技创新与伦理规范的平衡是科技发展面临的重要课题。", English: "Balancing technological innovation with ethical standards is an important issue in technological development."},
	{Chinese: "城市交通拥堵问题需要综合性的解决方案。", English: "Urban traffic congestion requires comprehensive solutions."},
	{Chinese: "心理健康问题在现代社会日益受到关注。", English: "Mental health issues are receiving increasing attention in modern society."},
	{Chinese: "食品安全监管体系的建立保障了消费者的权益。", English: "The establishment of food safety regulatory systems protects consumer rights."},
	{Chinese: "知识产权的保护促进了创新活动的持续发展。", English: "The protection of intellectual property promotes the continuous development of innovation."},
	{Chinese: "水资源管理是可持续发展战略的重要组成部分。", English: "Water resource management is an important component of sustainable development strategies."},
	{Chinese: "国际合作的加强有助于应对全球性挑战。", English: "Strengthening international cooperation helps address global challenges."},
	{Chinese: "教育技术的应用正在改变传统的教学模式。", English: "The application of educational technology is transforming traditional teaching models."},
	{Chinese: "社会信用体系的建设需要平衡效率与隐私保护。", English: "The construction of social credit systems requires balancing efficiency with privacy protection."},
	{Chinese: "职业培训项目有助于提高劳动力的就业竞争力。", English: "Vocational training programs help enhance the employment competitiveness of the workforce."},
	{Chinese: "城市规划需要考虑环境可持续性和居民生活质量。", English: "Urban planning needs to consider environmental sustainability and residents' quality of life."},
	{Chinese: "国际旅游业的繁荣促进了不同文化之间的交流与理解。", English: "The prosperity of the international tourism industry promotes cultural exchange and understanding."},
	{Chinese: "数据隐私保护法规的制定反映了对个人信息安全的重视。", English: "The formulation of data privacy protection regulations reflects the importance attached to personal information security."},
	{Chinese: "创业生态系统的发展为创新型企业提供了良好的成长环境。", English: "The development of entrepreneurial ecosystems provides a favorable growth environment for innovative enterprises."},
	{Chinese: "社会公益事业的发展体现了社会的文明进步。", English: "The development of social welfare undertakings reflects the progress of social civilization."},
	{Chinese: "国际教育交流项目拓宽了学生的国际视野。", English: "International educational exchange programs broaden students' international perspectives."},
	{Chinese: "循环经济模式的推广有助于减少资源浪费。", English: "The promotion of circular economy models helps reduce resource waste."},
	{Chinese: "网络安全的维护需要技术手段与法律规范相结合。", English: "Maintaining cybersecurity requires a combination of technical means and legal regulations."},
	{Chinese: "老龄化社会的到来要求调整现有的社会保障政策。", English: "The arrival of an aging society requires adjustments to existing social security policies."},
	{Chinese: "绿色建筑技术的应用推动了建筑行业的可持续发展。", English: "The application of green building technology promotes sustainable development in the construction industry."},
	{Chinese: "国际金融市场的波动对全球经济产生重要影响。", English: "Fluctuations in international financial markets have significant impacts on the global economy."},
	{Chinese: "社会创新项目的实施需要多方利益相关者的参与。", English: "The implementation of social innovation projects requires participation from multiple stakeholders."},
	{Chinese: "数字经济的兴起改变了传统的商业模式。", English: "The rise of the digital economy has transformed traditional business models."},
	{Chinese: "环境保护与经济发展的协调需要政策创新。", English: "Coordinating environmental protection with economic development requires policy innovation."},
	{Chinese: "国际人才流动促进了知识和技术的跨国传播。", English: "International talent mobility promotes the cross-border transmission of knowledge and technology."},
	{Chinese: "社会包容性政策的实施有助于减少社会不平等。", English: "The implementation of inclusive social policies helps reduce social inequality."},
	{Chinese: "科技创新政策的制定需要考虑长期发展战略。", English: "The formulation of technological innovation policies needs to consider long-term development strategies."},
	{Chinese: "国际组织在解决全球性问题方面发挥着重要作用。", English: "International organizations play an important role in addressing global issues."},
	{Chinese: "社会媒体的影响力要求建立相应的监管机制。", English: "The influence of social media requires the establishment of corresponding regulatory mechanisms."},
	{Chinese: "知识经济的特征要求教育体系进行相应的改革。", English: "The characteristics of the knowledge economy require corresponding reforms in the education system."},
	{Chinese: "国际合作的深化有助于构建人类命运共同体。", English: "The deepening of international cooperation helps build a community with a shared future for humanity."},
	{Chinese: "可持续发展目标的实现需要全球各国的共同努力。", English: "Achieving sustainable development goals requires joint efforts from all countries worldwide."},
}
